package errors

import "fmt"

// Taxonomy constructors. Each of these represents an unrecoverable build
// failure: the orchestrator aborts on the first one it sees.

// ConfigParse reports malformed site configuration text.
func ConfigParse(err error, path string) *BuildError {
	return Wrap(err, CategoryConfig, SeverityFatal,
		fmt.Sprintf("malformed configuration file %s", path)).
		WithContext("path", path)
}

// MetadataParse reports a malformed per-document metadata block,
// naming the offending file.
func MetadataParse(err error, file string) *BuildError {
	return Wrap(err, CategoryMetadata, SeverityFatal,
		fmt.Sprintf("malformed metadata block in %s", file)).
		WithContext("file", file)
}

// MissingSlug reports a document from which no slug could be derived.
func MissingSlug(file string) *BuildError {
	return New(CategorySlug, SeverityFatal,
		fmt.Sprintf("cannot derive slug for %s: no slug in metadata and filename yields nothing", file)).
		WithContext("file", file)
}

// InvalidSlug reports a slug that violates shape rules or claims a
// reserved top-level segment.
func InvalidSlug(slug, reason, file string) *BuildError {
	return New(CategorySlug, SeverityFatal,
		fmt.Sprintf("invalid slug %q in %s: %s", slug, file, reason)).
		WithContext("slug", slug).
		WithContext("file", file)
}

// DuplicateSlug reports two documents resolving to the same slug,
// naming both sources.
func DuplicateSlug(slug, newSource, firstSource string) *BuildError {
	return New(CategorySlug, SeverityFatal,
		fmt.Sprintf("duplicate slug %q: %s collides with %s", slug, newSource, firstSource)).
		WithContext("slug", slug).
		WithContext("source", newSource).
		WithContext("first_source", firstSource)
}

// Filesystem reports an unreadable input or unwritable output path.
func Filesystem(err error, op, path string) *BuildError {
	return Wrap(err, CategoryFilesystem, SeverityFatal,
		fmt.Sprintf("%s %s", op, path)).
		WithContext("path", path)
}

// Template reports a template parse or execution failure.
func Template(err error, name string) *BuildError {
	return Wrap(err, CategoryTemplate, SeverityFatal,
		fmt.Sprintf("template %s", name)).
		WithContext("template", name)
}
