package report

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/pipeworks/pipeadmin/internal/domain/orders"
	"github.com/pipeworks/pipeadmin/internal/domain/staff"
)

// Options controls the optional report sections.
type Options struct {
	IncludeStats bool
	DateFrom     string
	DateTo       string
}

// Exporter renders the dashboard's tabular reports to PDF. One exporter
// is safe to share; every call builds a fresh document from the snapshot
// it is given, so later mutations never affect an exported file.
type Exporter struct {
	company string
	now     func() time.Time
}

func NewExporter(company string) *Exporter {
	return &Exporter{company: company, now: time.Now}
}

// OrdersFilename follows the {kind}-report-{ISO-date}.pdf convention.
func OrdersFilename(t time.Time) string {
	return fmt.Sprintf("orders-report-%s.pdf", t.Format("2006-01-02"))
}

func StaffFilename(t time.Time) string {
	return fmt.Sprintf("staff-report-%s.pdf", t.Format("2006-01-02"))
}

// Orders writes the orders report. An empty collection renders a valid
// document with a head-only table.
func (e *Exporter) Orders(w io.Writer, list []orders.Order, opts Options) error {
	d := e.newDoc()

	y := d.companyHeader(e.company, "Orders Report", e.now())
	if opts.IncludeStats {
		y = d.statsBlock("Summary Statistics", OrderStatsRows(orders.ComputeStats(list)), y+10)
	}
	y = d.dateRange(opts, y)
	d.table(OrdersTable(list), y+10)

	return d.doc.Output(w)
}

// Staff writes the staff directory report, with an attendance rollup
// appended when records are supplied.
func (e *Exporter) Staff(w io.Writer, members []staff.Member, records []staff.AttendanceRecord, opts Options) error {
	d := e.newDoc()

	now := e.now()
	y := d.companyHeader(e.company, "Staff Report", now)
	if opts.IncludeStats {
		today := now.UTC().Format("2006-01-02")
		var todayRecords []staff.AttendanceRecord
		for _, rec := range records {
			if rec.Date == today {
				todayRecords = append(todayRecords, rec)
			}
		}
		stats := staff.ComputeStats(members, todayRecords, now.UTC().Format("2006-01"))
		y = d.statsBlock("Staff Summary", StaffStatsRows(stats), y+10)
	}
	y = d.dateRange(opts, y)
	y = d.table(StaffTable(members), y+10)

	if len(records) > 0 {
		if y > d.pageH-100 {
			d.doc.AddPage()
			y = d.margin
		}
		y += 20
		d.doc.SetTextColor(0, 0, 0)
		d.doc.SetFont("Helvetica", "B", 14)
		d.doc.Text(d.margin, y, "Attendance Summary")
		d.table(AttendanceTable(records, members), y+5)
	}

	return d.doc.Output(w)
}

type pdfDoc struct {
	doc    *fpdf.Fpdf
	pageW  float64
	pageH  float64
	margin float64
}

func (e *Exporter) newDoc() *pdfDoc {
	doc := fpdf.New("P", "mm", "A4", "")
	d := &pdfDoc{doc: doc, margin: 20}
	d.pageW, d.pageH = doc.GetPageSize()

	doc.SetAutoPageBreak(false, 0)
	doc.AliasNbPages("")
	company := e.company
	doc.SetFooterFunc(func() {
		doc.SetTextColor(0, 0, 0)
		doc.SetFont("Helvetica", "", 8)
		doc.SetXY(d.margin, d.pageH-14)
		doc.CellFormat(0, 8, company+" - Confidential", "", 0, "L", false, 0, "")
		doc.SetXY(d.pageW-45, d.pageH-14)
		doc.CellFormat(25, 8, fmt.Sprintf("Page %d of {nb}", doc.PageNo()), "", 0, "R", false, 0, "")
	})
	doc.AddPage()
	return d
}

// companyHeader draws the branded report header and returns the Y
// position where content starts.
func (d *pdfDoc) companyHeader(company, title string, now time.Time) float64 {
	doc := d.doc
	doc.SetTextColor(0, 0, 0)

	doc.SetFont("Helvetica", "B", 24)
	doc.Text(d.margin, 30, company)

	doc.SetFont("Helvetica", "", 12)
	doc.Text(d.margin, 40, "Admin Dashboard Report")

	doc.SetFont("Helvetica", "B", 18)
	doc.Text(d.margin, 60, title)

	doc.SetFont("Helvetica", "", 10)
	doc.Text(d.margin, 70, "Generated on: "+now.Format("1/2/2006, 3:04:05 PM"))

	doc.SetDrawColor(200, 200, 200)
	doc.Line(d.margin, 75, d.pageW-d.margin, 75)

	return 85
}

func (d *pdfDoc) dateRange(opts Options, y float64) float64 {
	if opts.DateFrom == "" && opts.DateTo == "" {
		return y
	}
	d.doc.SetTextColor(0, 0, 0)
	d.doc.SetFont("Helvetica", "", 10)
	d.doc.Text(d.margin, y+10, fmt.Sprintf("Report Period: %s - %s",
		formatDate(opts.DateFrom), formatDate(opts.DateTo)))
	return y + 10
}

// statsBlock draws the bold-label/value summary rows and returns the Y
// position below the block.
func (d *pdfDoc) statsBlock(title string, rows []StatsRow, y float64) float64 {
	doc := d.doc
	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "B", 14)
	doc.Text(d.margin, y, title)
	y += 5

	const rowH = 6
	for _, row := range rows {
		if y+rowH > d.pageH-20 {
			doc.AddPage()
			y = d.margin
		}
		doc.SetFont("Helvetica", "B", 10)
		doc.SetXY(d.margin, y)
		doc.CellFormat(50, rowH, row.Label, "", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 10)
		doc.CellFormat(30, rowH, row.Value, "", 0, "L", false, 0, "")
		y += rowH
	}
	return y + 4
}

// table draws a striped data table starting at y, breaking pages as
// needed and repeating the head row on each new page. Returns the Y
// position just below the last row.
func (d *pdfDoc) table(t Table, y float64) float64 {
	const headH, rowH = 7.0, 6.0
	bottom := d.pageH - 20

	y = d.tableHead(t, y, headH)
	for i, row := range t.Rows {
		if y+rowH > bottom {
			d.doc.AddPage()
			y = d.tableHead(t, d.margin, headH)
		}
		d.tableRow(t, row, i, y, rowH)
		y += rowH
	}
	return y
}

func (d *pdfDoc) tableHead(t Table, y, h float64) float64 {
	doc := d.doc
	doc.SetFont("Helvetica", "B", 8)
	doc.SetTextColor(255, 255, 255)
	doc.SetFillColor(headFill.R, headFill.G, headFill.B)

	x := d.margin
	for i, label := range t.Head {
		doc.SetXY(x, y)
		doc.CellFormat(t.Widths[i], h, d.fit(label, t.Widths[i]), "", 0, "L", true, 0, "")
		x += t.Widths[i]
	}
	return y + h
}

func (d *pdfDoc) tableRow(t Table, row Row, idx int, y, h float64) {
	doc := d.doc
	doc.SetFont("Helvetica", "", 8)
	doc.SetTextColor(0, 0, 0)

	x := d.margin
	for c, cell := range row {
		w := t.Widths[c]
		fill := false
		switch {
		case cell.Fill != nil:
			doc.SetFillColor(cell.Fill.R, cell.Fill.G, cell.Fill.B)
			fill = true
		case idx%2 == 1:
			doc.SetFillColor(stripeFill.R, stripeFill.G, stripeFill.B)
			fill = true
		}
		doc.SetXY(x, y)
		doc.CellFormat(w, h, d.fit(cell.Text, w), "", 0, "L", fill, 0, "")
		x += w
	}
}

// fit truncates text that would overflow the cell width; fpdf does not
// clip cell content on its own.
func (d *pdfDoc) fit(s string, w float64) string {
	limit := w - 2
	if d.doc.GetStringWidth(s) <= limit {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && d.doc.GetStringWidth(string(runes)) > limit {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}
