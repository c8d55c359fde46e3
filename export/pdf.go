package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

const (
	fontFamily = "Arial"
	fontSize   = 10.0
	pageWidth  = 190.0 // A4 minus margins, in mm
)

// RebalancingPDF renders a markdown report to PDF and writes it to w.
//
// Headings, paragraphs, emphasis, lists, tables and thematic breaks are laid
// out. Text is translated to the cp1252 encoding of the standard PDF fonts,
// characters outside of it are lost.
func RebalancingPDF(w io.Writer, markdown, title string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 10)
	pdf.SetTitle(title, true)
	pdf.SetCreator("inv", true)
	pdf.AddPage()
	pdf.SetFont(fontFamily, "", fontSize)

	md := goldmark.New(goldmark.WithExtensions(extension.Table, extension.Strikethrough))
	source := []byte(markdown)
	doc := md.Parser().Parse(text.NewReader(source))

	r := &pdfRenderer{
		pdf:    pdf,
		source: source,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
	}
	if err := ast.Walk(doc, r.walk); err != nil {
		return fmt.Errorf("failed to generate PDF: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// pdfRenderer lays out a goldmark document with fpdf.
type pdfRenderer struct {
	pdf       *fpdf.Fpdf
	source    []byte
	tr        func(string) string
	bold      bool
	italic    bool
	listLevel int
}

func (r *pdfRenderer) updateFont() {
	style := ""
	if r.bold {
		style += "B"
	}
	if r.italic {
		style += "I"
	}
	r.pdf.SetFont(fontFamily, style, fontSize)
}

func (r *pdfRenderer) write(s string) {
	r.pdf.Write(5, r.tr(s))
}

func (r *pdfRenderer) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := n.(type) {
	case *ast.Heading:
		if entering {
			r.pdf.Ln(4)
			size := map[int]float64{1: 16, 2: 13, 3: 11}[n.Level]
			if size == 0 {
				size = fontSize
			}
			r.pdf.SetFont(fontFamily, "B", size)
		} else {
			r.pdf.Ln(8)
			r.updateFont()
		}
	case *ast.Paragraph:
		if !entering {
			r.pdf.Ln(7)
		}
	case *ast.TextBlock:
		// tight list items
	case *ast.Text:
		if entering {
			r.write(string(n.Segment.Value(r.source)))
			if n.SoftLineBreak() || n.HardLineBreak() {
				r.write(" ")
			}
		}
	case *ast.String:
		if entering {
			r.write(string(n.Value))
		}
	case *ast.Emphasis:
		if n.Level == 2 {
			r.bold = entering
		} else {
			r.italic = entering
		}
		r.updateFont()
	case *ast.CodeSpan:
		if entering {
			r.pdf.SetFont("Courier", "", fontSize)
			r.write(nodeText(n, r.source))
			r.updateFont()
		}
		return ast.WalkSkipChildren, nil
	case *ast.List:
		if entering {
			r.listLevel++
		} else {
			r.listLevel--
			if r.listLevel == 0 {
				r.pdf.Ln(7)
			}
		}
	case *ast.ListItem:
		if entering {
			if n.PreviousSibling() != nil {
				r.pdf.Ln(5)
			}
			r.pdf.SetX(10 + float64(r.listLevel)*5)
			r.write("- ")
		}
	case *ast.ThematicBreak:
		if entering {
			r.pdf.Ln(2)
			r.pdf.Line(10, r.pdf.GetY(), 10+pageWidth, r.pdf.GetY())
			r.pdf.Ln(4)
		}
	case *extast.Table:
		if entering {
			r.table(n)
			return ast.WalkSkipChildren, nil
		}
	}
	return ast.WalkContinue, nil
}

// nodeText concatenates the text of the children of n.
func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(source))
		case *ast.String:
			b.Write(c.Value)
		default:
			b.WriteString(nodeText(c, source))
		}
	}
	return b.String()
}

// table draws a table with equal columns, the header row shaded.
func (r *pdfRenderer) table(n *extast.Table) {
	var (
		rows   [][]string
		aligns []string
	)
	for _, a := range n.Alignments {
		switch a {
		case extast.AlignRight:
			aligns = append(aligns, "R")
		case extast.AlignCenter:
			aligns = append(aligns, "C")
		default:
			aligns = append(aligns, "L")
		}
	}
	for row := n.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, nodeText(cell, r.source))
		}
		rows = append(rows, cells)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return
	}

	width := pageWidth / float64(len(rows[0]))
	const lineHeight = 6.0
	r.pdf.Ln(2)
	for i, cells := range rows {
		if i == 0 {
			r.pdf.SetFont(fontFamily, "B", fontSize-1)
			r.pdf.SetFillColor(230, 230, 230)
		} else {
			r.pdf.SetFont(fontFamily, "", fontSize-1)
		}
		for j, cell := range cells {
			align := "L"
			if j < len(aligns) {
				align = aligns[j]
			}
			r.pdf.CellFormat(width, lineHeight, r.tr(cell), "1", 0, align, i == 0, 0, "")
		}
		r.pdf.Ln(-1)
	}
	r.pdf.Ln(4)
	r.updateFont()
}
