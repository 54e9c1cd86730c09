// Package assets manages cover letter templates and default letter bodies.
//
// Assets ship embedded in the binary and can be overridden from a directory
// on disk via --asset-path. The directory mirrors the embedded layout:
//
//	assets/
//	├── templates/
//	│   └── custom.tex.tmpl
//	└── bodies/
//	    └── custom.tex
package assets
