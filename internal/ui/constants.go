// Package ui provides shared UI constants and utilities.
package ui

// ScrollMargin is the number of items kept visible above/below a selection.
const ScrollMargin = 1
