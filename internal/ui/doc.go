package ui

// Package ui contains the Fyne-based user interface for the kiosk. It
// implements the display collaborators the widget controllers drive (the
// slideshow surface, the price board, the currency selector) and wires the
// transport buttons, section tabs, and support dialog.
