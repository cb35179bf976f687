// Package chart renders telemetry series as stacked line panels.
//
// Each [Panel] becomes one plot; panels are aligned vertically on a single
// image so that filtered variants of a signal can be compared with the raw
// trace above them. Spectra are drawn as stems.
//
// Rendering uses gonum/plot. Non-finite samples (a diverging filter, for
// instance) are left out of the drawing rather than failing the render.
package chart
