// Package value provides the untyped tagged-union node that carries submitted
// form data before type coercion. A Value holds exactly one of null, bool,
// int, double, string, array, or object payloads; accessors expose the
// payload without converting across kinds, so callers can tell an int-shaped
// numeric apart from a double-shaped one.
package value
