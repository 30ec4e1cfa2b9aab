package integration_test

const (
	cacheImageName = "redis:7"
	tmdbAPIKey     = "integration-key"
)

const nowPlayingJSON = `{
	"dates": {"maximum": "2025-02-01", "minimum": "2025-01-01"},
	"page": 1,
	"results": [
		{"id": 101, "title": "Banner Movie", "overview": "Shown in the hero banner", "poster_path": "/p101.jpg", "backdrop_path": "/b101.jpg", "release_date": "2025-01-10"},
		{"id": 102, "title": "Second", "overview": "", "poster_path": "/p102.jpg", "backdrop_path": "/b102.jpg", "release_date": "2025-01-11"},
		{"id": 103, "title": "Third", "overview": "", "poster_path": null, "backdrop_path": null, "release_date": ""},
		{"id": 104, "title": "Fourth", "overview": "", "poster_path": "/p104.jpg", "backdrop_path": "/b104.jpg", "release_date": "2025-01-13"},
		{"id": 105, "title": "Fifth", "overview": "", "poster_path": "/p105.jpg", "backdrop_path": "/b105.jpg", "release_date": "2025-01-14"},
		{"id": 106, "title": "Sixth", "overview": "", "poster_path": "/p106.jpg", "backdrop_path": "/b106.jpg", "release_date": "2025-01-15"},
		{"id": 107, "title": "Seventh", "overview": "", "poster_path": "/p107.jpg", "backdrop_path": "/b107.jpg", "release_date": "2025-01-16"},
		{"id": 108, "title": "Eighth", "overview": "", "poster_path": "/p108.jpg", "backdrop_path": "/b108.jpg", "release_date": "2025-01-17"}
	],
	"total_pages": 1,
	"total_results": 8
}`

const topRatedJSON = `{
	"page": 1,
	"results": [
		{"id": 201, "title": "Classic", "overview": "An old favourite", "poster_path": "/p201.jpg", "backdrop_path": "/b201.jpg", "release_date": "1994-09-23"},
		{"id": 202, "title": "Another Classic", "overview": "", "poster_path": "/p202.jpg", "backdrop_path": "/b202.jpg", "release_date": "1972-03-14"}
	],
	"total_pages": 1,
	"total_results": 2
}`

const upcomingJSON = `{
	"dates": {"maximum": "2025-04-01", "minimum": "2025-02-01"},
	"page": 1,
	"results": [
		{"id": 301, "title": "Soon", "overview": "", "poster_path": "/p301.jpg", "backdrop_path": "/b301.jpg", "release_date": "2025-03-01"}
	],
	"total_pages": 1,
	"total_results": 1
}`

const searchJSON = `{
	"page": 1,
	"results": [
		{"id": 201, "title": "Classic", "overview": "An old favourite", "poster_path": "/p201.jpg", "backdrop_path": "/b201.jpg", "release_date": "1994-09-23"}
	],
	"total_pages": 1,
	"total_results": 1
}`
