// Package skill implements the core skill-tracking domain model: skills
// with their variant-specific visual metaphors, categories that group them,
// and the platform manager that owns all categories and persists them.
// The package never writes to the terminal; operations return Report values
// that a presentation layer renders.
package skill
