// Package glean extracts clean, structured articles from web pages.
// Given a URL or pre-fetched HTML it produces an Article: title, publish
// date, canonical text, tags, embedded videos, and a representative image,
// with boilerplate removed.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, dateparse/);
// pipeline orchestration lives in crawl/.
package glean
