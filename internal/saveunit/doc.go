// Package saveunit turns matched save locations into backup units keyed by
// device, collapsing duplicate paths and classifying each as a file or a
// folder.
package saveunit
