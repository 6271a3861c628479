package controllers

import (
	"bytes"
	"context"
	"html/template"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/gofiber/fiber/v2"
	"github.com/wanderlk/tour-api/db"
	"github.com/wanderlk/tour-api/models"
	"github.com/wanderlk/tour-api/stats"
	"github.com/wanderlk/tour-api/utils"
)

const reportTemplate = `<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: Helvetica, Arial, sans-serif; margin: 40px; }
  h1 { border-bottom: 2px solid #333; padding-bottom: 8px; }
  table { border-collapse: collapse; width: 100%; margin: 16px 0; }
  th, td { border: 1px solid #999; padding: 6px 10px; text-align: left; }
  th { background: #eee; }
  .meta { color: #666; font-size: 12px; }
</style>
</head>
<body>
  <h1>Tour Management Summary</h1>
  <p class="meta">Generated {{.GeneratedAt}}</p>

  <table>
    <tr><th>Users</th><td>{{.UserCount}}</td></tr>
    <tr><th>Packages</th><td>{{.PackageCount}}</td></tr>
    <tr><th>Appointments</th><td>{{.AppointmentCount}}</td></tr>
    <tr><th>Reviews</th><td>{{.ReviewCount}}</td></tr>
    <tr><th>Guide assignments</th><td>{{.AssignmentCount}}</td></tr>
  </table>

  <h2>Appointments by status</h2>
  <table>
    {{range $status, $count := .ByStatus}}
    <tr><th>{{$status}}</th><td>{{$count}}</td></tr>
    {{end}}
  </table>

  <h2>Reviews</h2>
  <table>
    <tr><th>Average rating</th><td>{{printf "%.2f" .Reviews.Average}}</td></tr>
    <tr><th>Total reviews</th><td>{{.Reviews.Count}}</td></tr>
  </table>
</body>
</html>`

type reportData struct {
	GeneratedAt      string
	UserCount        int64
	PackageCount     int64
	AppointmentCount int64
	ReviewCount      int64
	AssignmentCount  int64
	ByStatus         map[models.AppointmentStatus]int64
	Reviews          stats.ReviewSummary
}

// GenerateReport renders the admin summary as a PDF and streams it in
// the response body.
func GenerateReport(c *fiber.Ctx) error {
	data := reportData{
		GeneratedAt: time.Now().Format("2006-01-02 15:04"),
		ByStatus:    map[models.AppointmentStatus]int64{},
	}

	db.DB.Model(&models.User{}).Count(&data.UserCount)
	db.DB.Model(&models.Package{}).Count(&data.PackageCount)
	db.DB.Model(&models.Appointment{}).Count(&data.AppointmentCount)
	db.DB.Model(&models.Review{}).Count(&data.ReviewCount)
	db.DB.Model(&models.GuideAssignment{}).Count(&data.AssignmentCount)

	for _, status := range []models.AppointmentStatus{
		models.StatusBooked, models.StatusConfirmed, models.StatusRejected,
		models.StatusCompleted, models.StatusCancelled,
	} {
		var count int64
		db.DB.Model(&models.Appointment{}).Where("status = ?", status).Count(&count)
		data.ByStatus[status] = count
	}

	var reviews []models.Review
	db.DB.Find(&reviews)
	data.Reviews = stats.SummarizeReviews(reviews)

	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to build report template",
			Error:   err.Error(),
		})
	}

	var rendered bytes.Buffer
	if err := tmpl.Execute(&rendered, data); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to render report",
			Error:   err.Error(),
		})
	}

	pdf, err := renderPDF(rendered.String())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to generate PDF",
			Error:   err.Error(),
		})
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="tour-report.pdf"`)
	return c.Send(pdf)
}

func renderPDF(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}
