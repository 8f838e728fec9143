// Package validators ships reusable rules for the field variants: string
// length and pattern checks, numeric bounds, and a markup rejector. Every
// validator is pure and fails with a user-facing message in the same
// register as the field coercion messages.
package validators
