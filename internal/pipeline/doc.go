// Package pipeline implements the datalog-to-markdown conversion stages:
// classification of input lines into sections, and section rendering.
package pipeline
