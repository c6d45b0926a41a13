// Package unsplash implements generation.ImageFinder against the Unsplash
// photo search API. Lookups are best effort: any failure is logged and reported
// as "no image" so callers can fall back to a placeholder.
package unsplash
