package extract

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// preflight inspects the document before extraction: page count, and
// whether it carries image XObjects. A PDF with images but no text
// layer is almost certainly a scan, which informs the OCR decision and
// the warnings shown to the reviewer. Preflight failure is reported as
// a warning; extraction proceeds regardless.
func preflight(data []byte) (pages int, hasImages bool, warning string) {
	conf := model.NewDefaultConfiguration()

	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return 0, false, fmt.Sprintf("preflight: %v", err)
	}

	return ctx.PageCount, detectImageStreams(ctx), ""
}

// detectImageStreams checks for image XObjects, first via the optimize
// tables, then by scanning the xref table directly.
func detectImageStreams(ctx *model.Context) bool {
	if ctx.Optimize != nil {
		for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
			if len(pdfcpu.ImageObjNrs(ctx, pageNr)) > 0 {
				return true
			}
		}
	}

	for _, entry := range ctx.Table {
		if entry == nil || entry.Free || entry.Compressed {
			continue
		}

		sd, ok := entry.Object.(types.StreamDict)
		if !ok {
			continue
		}

		if subtype, found := sd.Find("Subtype"); found {
			if name, isName := subtype.(types.Name); isName && name == "Image" {
				return true
			}
		}
	}

	return false
}
