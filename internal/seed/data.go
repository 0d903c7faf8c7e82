package seed

import (
	"time"

	"newshub/internal/httpapi/models"
)

func strptr(s string) *string { return &s }

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

var users = []models.User{
	{
		Username:  "butter_bridge",
		Name:      "jonny",
		AvatarURL: strptr("https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"),
	},
	{
		Username:  "icellusedkars",
		Name:      "sam",
		AvatarURL: strptr("https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"),
	},
	{
		Username:  "rogersop",
		Name:      "paul",
		AvatarURL: strptr("https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"),
	},
	{
		Username:  "lurker",
		Name:      "do_nothing",
		AvatarURL: strptr("https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"),
	},
}

var topics = []models.Topic{
	{Slug: "mitch", Description: "The man, the Mitch, the legend"},
	{Slug: "cats", Description: "Not dogs"},
	{Slug: "paper", Description: "what books are made of"},
}

var articles = []models.Article{
	{
		Title:     "Living in the shadow of a great man",
		Topic:     "mitch",
		Author:    "butter_bridge",
		Body:      "I find this existence challenging",
		CreatedAt: ts("2020-07-09T20:11:00Z"),
		Votes:     100,
	},
	{
		Title:     "Sony Vaio; or, The Laptop",
		Topic:     "mitch",
		Author:    "icellusedkars",
		Body:      "Call me Mitchell. Some years ago, never mind how long precisely, I bought a laptop.",
		CreatedAt: ts("2020-10-16T05:03:00Z"),
	},
	{
		Title:     "Eight pug gifs that remind me of mitch",
		Topic:     "mitch",
		Author:    "icellusedkars",
		Body:      "some gifs",
		CreatedAt: ts("2020-11-03T08:12:00Z"),
	},
	{
		Title:     "UNCOVERED: catspiracy to bring down democracy",
		Topic:     "cats",
		Author:    "rogersop",
		Body:      "Bastet walks amongst us, and the cats are taking arms!",
		CreatedAt: ts("2020-08-03T13:14:00Z"),
	},
	{
		Title:     "Moustache",
		Topic:     "mitch",
		Author:    "butter_bridge",
		Body:      "Have you seen the size of that thing?",
		CreatedAt: ts("2020-10-11T11:24:00Z"),
	},
}

var comments = []models.Comment{
	{
		ArticleID: 1,
		Body:      "Oh, I've got compassion running out of my nose, pal! I'm the Sultan of Sentiment!",
		Votes:     16,
		Author:    "butter_bridge",
		CreatedAt: ts("2020-04-06T12:17:00Z"),
	},
	{
		ArticleID: 1,
		Body:      "The beautiful thing about treasure is that it exists.",
		Votes:     14,
		Author:    "butter_bridge",
		CreatedAt: ts("2020-10-31T03:03:00Z"),
	},
	{
		ArticleID: 1,
		Body:      "Replacing the quiet elegance of the dark suit and tie with the casual indifference of these muted earth tones is a form of fashion suicide.",
		Votes:     100,
		Author:    "icellusedkars",
		CreatedAt: ts("2020-03-01T01:13:00Z"),
	},
	{
		ArticleID: 4,
		Body:      "I carry a log — yes. Is it funny to you? It is not to me.",
		Votes:     -100,
		Author:    "icellusedkars",
		CreatedAt: ts("2020-02-23T12:01:00Z"),
	},
	{
		ArticleID: 1,
		Body:      "I hate streaming noses",
		Author:    "icellusedkars",
		CreatedAt: ts("2020-11-03T21:00:00Z"),
	},
	{
		ArticleID: 5,
		Body:      "Delicious crackerbreads",
		Author:    "icellusedkars",
		CreatedAt: ts("2020-04-14T20:19:00Z"),
	},
}
