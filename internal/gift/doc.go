// Package gift turns a recipient profile into enriched gift suggestions.
//
// The Pipeline builds a prompt from the profile, asks a generation.Generator
// for candidates, looks up one image per candidate concurrently and assembles
// the final suggestions with ids, image URLs and marketplace links. Only a
// failed generation request is reported as an error; malformed model output
// and failed image lookups degrade to fewer suggestions or placeholder images.
// Persistence is left to the caller.
package gift
