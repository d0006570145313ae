// Package brandkit models brand kit documents and exports them as
// portable ZIP archives.
//
// A brand kit describes a brand's visual identity: metadata, logo
// variants, a color palette, typography, and gallery images. The
// package validates kit documents against the schema, converts palette
// colors between hex, RGB, and CMYK, and exports a kit together with
// its staged binary assets into a self-contained archive whose path
// references all point at the archive's own entries.
//
// # Quick Start
//
// Decode a document, validate it, stage assets, and export:
//
//	kit, err := brandkit.DecodeDocument(data, brandkit.FormatJSON)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := kit.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
//	stage := brandkit.NewStage()
//	_, err = stage.Put(
//	    brandkit.Slot{Kind: brandkit.SlotLogoVariant, Index: 0, Sub: 0},
//	    "logo.png", logoBytes,
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	exporter := brandkit.NewExporter(
//	    brandkit.WithDelivery(&brandkit.FileDelivery{Dir: "dist"}),
//	)
//	result, err := exporter.Export(ctx, kit, stage.Snapshot())
//
// The archive contains data.json at the root plus the staged assets
// under assets/logos/, assets/gallery/, and assets/fonts/. Asset-bearing
// fields in data.json are rewritten to those entry paths; fields without
// a staged asset keep their value verbatim.
//
// # Validation
//
// Validate returns every failure at once as a ValidationError, a list
// of field-path and message pairs. Validation is structural and lightly
// semantic; it never checks cross-field consistency, so a typography
// example may reference a font name that does not exist and the three
// representations inside one ColorValues may disagree.
//
// # Color Conversions
//
// The codec functions (HexToRGB, RGBToCMYK, ...) are pure and return
// the empty string for input that does not parse. Conversions through
// the CMYK intermediate can drift by one unit per channel.
//
// # Style Guide Preview
//
// Previewer renders a kit as an HTML style guide page, or as a PDF via
// headless Chrome (go-rod). PDF rendering requires Chrome/Chromium;
// rod downloads a managed Chromium on first run. For containers and
// CI, set ROD_NO_SANDBOX=1 or point ROD_BROWSER_BIN at a binary.
package brandkit
