// ABOUTME: Content domain models for the site's searchable entities
// ABOUTME: Defines articles, tags, and projects as stored in the content store

package domain

import "time"

// Article represents a published blog post
type Article struct {
	// ID is the article's natural unique identifier
	ID string

	// Slug is the URL-friendly identifier used to build links
	Slug string

	// Title is the article's title
	Title string

	// Excerpt is a short plain-text summary (may contain HTML in storage)
	Excerpt string

	// Author is the display name of the article's author
	Author string

	// PublishedAt is when the article was published
	PublishedAt time.Time

	// ReadingTime is the estimated reading time in seconds
	ReadingTime int

	// Views is the accumulated view count
	Views int

	// Tags are the names of tags attached to this article
	Tags []string
}

// Tag represents a content tag
type Tag struct {
	// Slug is the URL-friendly identifier
	Slug string

	// Name is the tag's display name
	Name string

	// Description is an optional description of the tag
	Description string

	// PostCount is the number of published articles carrying this tag
	PostCount int
}

// Project represents a portfolio project
type Project struct {
	// Slug is the URL-friendly identifier
	Slug string

	// Title is the project's title
	Title string

	// Description is the project's description
	Description string

	// TechStack lists the technologies the project uses
	TechStack []string
}
