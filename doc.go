// Package cvkit assembles modular LaTeX CV documents from tagged unit
// snippets, renders moderncv cover letters, and splits BibTeX
// bibliographies into tagged subsets.
//
// The core entry point is Service, which reads unit metadata and unit
// files from a workspace directory layout:
//
//	unit_metadata.yaml   unit tags and priorities, grouped by section
//	units/<section>/     one .tex file per unit
//	sections/            assembled section output
//
// Basic usage:
//
//	svc := cvkit.New(
//		cvkit.WithMetadataPath("unit_metadata.yaml"),
//		cvkit.WithUnitsDir("units"),
//	)
//	res, err := svc.AssembleSection(ctx, cvkit.AssembleInput{
//		Section: "education",
//		Tags:    []string{"full_cv"},
//	})
//
// Cover letters and bibliography splitting are available through
// RenderLetter and SplitBibliography on the same Service.
package cvkit
