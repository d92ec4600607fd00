// Package recast provides a batch pipeline that ingests articles from a
// paginated public listing and produces reference-grounded rewrites of them.
// The ingestion path resolves pagination, harvests article links, extracts
// title/date/content with heuristic fallback chains, and upserts original
// records into the article store. The enrichment path discovers two
// corroborating external references per article, builds a deterministic
// rewrite prompt, and persists the generated rewrite as a new record.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, gemini/).
package recast
