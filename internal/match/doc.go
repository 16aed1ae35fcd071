// Package match suggests the closest known name for a mistyped one.
package match
