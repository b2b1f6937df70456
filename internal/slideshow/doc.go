package slideshow

// Package slideshow implements the auto-cycling image widget: gallery
// loading with a built-in fallback, one-shot initialization, cyclic index
// advancement, and the recurring display timer. The display itself is an
// injected DisplaySurface so the controller runs without a real window.
