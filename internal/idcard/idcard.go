package idcard

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shenikar/barangay_portal/internal/models"
)

// Размер карты ISO/IEC 7810 ID-1, мм
const (
	cardWidth  = 86.0
	cardHeight = 54.0
	margin     = 3.0
)

const (
	validity   = 365 * 24 * time.Hour
	dateLayout = "01/02/2006"
	notSet     = "N/A"
)

var ErrNoNumericID = errors.New("idcard: user id is not numeric")

// Card - данные для печати удостоверения жителя
type Card struct {
	Number      string
	Name        string
	Address     string
	Birthdate   string
	CivilStatus string
	Contact     string
	Role        string
	Locality    string
	IssuedAt    time.Time
}

// NumberFor строит номер удостоверения: BRG-<id из 6 цифр>-<год>
func NumberFor(userID, year int) string {
	return fmt.Sprintf("BRG-%06d-%d", userID, year)
}

// FileName возвращает имя файла для скачивания
func FileName(number string) string {
	if number == "" {
		number = "unknown"
	}
	return "barangay-id-" + number + ".pdf"
}

// FromUser собирает карту из профиля пользователя
func FromUser(u *models.User, locality string, now time.Time) (*Card, error) {
	id, ok := u.ID.Int()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoNumericID, u.ID)
	}

	card := &Card{
		Number:   NumberFor(id, now.Year()),
		Name:     u.Username,
		Locality: locality,
		IssuedAt: now,
	}
	if p := u.Profile; p != nil {
		if p.Name != "" {
			card.Name = p.Name
		}
		card.Address = p.Address
		card.Birthdate = formatBirthdate(p.Birthdate)
		card.CivilStatus = p.CivilStatus
		card.Contact = p.ContactNumber
		card.Role = string(p.Role)
	}
	return card, nil
}

// ValidUntil - срок действия: год с даты выдачи
func (c *Card) ValidUntil() time.Time {
	return c.IssuedAt.Add(validity)
}

func formatBirthdate(raw string) string {
	if raw == "" {
		return ""
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return raw
	}
	return t.Format(dateLayout)
}

func orNotSet(v string) string {
	if strings.TrimSpace(v) == "" {
		return notSet
	}
	return v
}

// Render печатает карту в PDF одной страницей 86x54 мм
func Render(w io.Writer, c *Card) error {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: cardWidth, Ht: cardHeight},
	})
	pdf.SetTitle("Barangay ID "+c.Number, false)
	pdf.SetCreator("barangay_portal", false)
	pdf.SetCreationDate(c.IssuedAt)
	pdf.SetModificationDate(c.IssuedAt)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// Латиница с диакритикой (ñ) переводится в cp1252 для встроенных шрифтов
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	drawBackground(pdf)
	drawHeader(pdf, tr, c.Locality)
	drawPhotoBox(pdf)
	drawIdentity(pdf, tr, c)
	drawDetails(pdf, tr, c)
	drawFooter(pdf, c)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("idcard: could not render pdf: %w", err)
	}
	return nil
}

func drawBackground(pdf *fpdf.Fpdf) {
	pdf.LinearGradient(0, 0, cardWidth, cardHeight, 6, 95, 70, 75, 85, 99, 0, 0, 1, 1)

	pdf.SetAlpha(0.1, "Normal")
	pdf.SetFillColor(255, 255, 255)
	pdf.Rect(0, 0, cardWidth, 11, "F")
	pdf.SetAlpha(1, "Normal")

	pdf.SetDrawColor(255, 255, 255)
	pdf.SetLineWidth(0.1)
	pdf.Line(0, 11, cardWidth, 11)
}

func drawHeader(pdf *fpdf.Fpdf, tr func(string) string, locality string) {
	pdf.SetTextColor(255, 255, 255)

	pdf.SetXY(0, 1.2)
	pdf.SetFont("Helvetica", "B", 6.5)
	pdf.CellFormat(cardWidth, 3, "REPUBLIC OF THE PHILIPPINES", "", 2, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 5.5)
	pdf.CellFormat(cardWidth, 2.8, "BARANGAY IDENTIFICATION CARD", "", 2, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 4.5)
	pdf.CellFormat(cardWidth, 2.5, tr(strings.ToUpper(locality)), "", 2, "C", false, 0, "")
}

func drawPhotoBox(pdf *fpdf.Fpdf) {
	pdf.SetFillColor(255, 255, 255)
	pdf.SetDrawColor(209, 213, 219)
	pdf.Rect(margin, 13.5, 17, 21, "FD")

	pdf.SetTextColor(156, 163, 175)
	pdf.SetFont("Helvetica", "", 4.5)
	pdf.SetXY(margin, 22.5)
	pdf.CellFormat(17, 3, "PHOTO", "", 0, "C", false, 0, "")
}

func drawIdentity(pdf *fpdf.Fpdf, tr func(string) string, c *Card) {
	const x = 23.0
	const width = cardWidth - x - margin

	label := func(y float64, text string) {
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "", 4.5)
		pdf.SetXY(x, y)
		pdf.CellFormat(width, 2.2, text, "", 0, "L", false, 0, "")
	}

	label(13.5, "ID NO:")
	pdf.SetTextColor(254, 240, 138)
	pdf.SetFont("Helvetica", "B", 6)
	pdf.SetXY(x, 15.7)
	pdf.CellFormat(width, 2.8, orNotSet(c.Number), "", 0, "L", false, 0, "")

	label(19.2, "NAME:")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 6.5)
	pdf.SetXY(x, 21.4)
	pdf.CellFormat(width, 3, tr(strings.ToUpper(orNotSet(c.Name))), "", 0, "L", false, 0, "")

	label(25.2, "ADDRESS:")
	pdf.SetFont("Helvetica", "", 4.5)
	lines := pdf.SplitLines([]byte(tr(orNotSet(c.Address))), width)
	for i, line := range lines {
		// Помещается не больше трех строк адреса
		if i == 3 {
			break
		}
		pdf.SetXY(x, 27.4+float64(i)*2.2)
		pdf.CellFormat(width, 2.2, string(line), "", 0, "L", false, 0, "")
	}
}

func drawDetails(pdf *fpdf.Fpdf, tr func(string) string, c *Card) {
	pdf.SetDrawColor(255, 255, 255)
	pdf.SetAlpha(0.2, "Normal")
	pdf.Line(margin, 35.5, cardWidth-margin, 35.5)
	pdf.SetAlpha(1, "Normal")

	items := []struct{ label, value string }{
		{"BIRTHDATE:", c.Birthdate},
		{"CIVIL STATUS:", c.CivilStatus},
		{"CONTACT:", c.Contact},
		{"ROLE:", c.Role},
	}
	colWidth := (cardWidth - 2*margin) / 2
	for i, item := range items {
		x := margin + float64(i%2)*colWidth
		y := 36.3 + float64(i/2)*4.4

		pdf.SetTextColor(209, 250, 229)
		pdf.SetFont("Helvetica", "", 4)
		pdf.SetXY(x, y)
		pdf.CellFormat(colWidth, 1.9, item.label, "", 0, "L", false, 0, "")

		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 4.5)
		pdf.SetXY(x, y+1.9)
		pdf.CellFormat(colWidth, 2.2, tr(orNotSet(item.value)), "", 0, "L", false, 0, "")
	}
}

func drawFooter(pdf *fpdf.Fpdf, c *Card) {
	pdf.SetDrawColor(255, 255, 255)
	pdf.SetAlpha(0.2, "Normal")
	pdf.Line(margin, 45.3, cardWidth-margin, 45.3)
	pdf.SetAlpha(1, "Normal")

	half := (cardWidth - 2*margin) / 2
	stamp := func(x float64, align, label, value string) {
		pdf.SetTextColor(209, 250, 229)
		pdf.SetFont("Helvetica", "", 4)
		pdf.SetXY(x, 46)
		pdf.CellFormat(half, 1.9, label, "", 0, align, false, 0, "")

		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 4.5)
		pdf.SetXY(x, 47.9)
		pdf.CellFormat(half, 2.2, value, "", 0, align, false, 0, "")
	}
	stamp(margin, "L", "ISSUED:", c.IssuedAt.Format(dateLayout))
	stamp(margin+half, "R", "VALID UNTIL:", c.ValidUntil().Format(dateLayout))

	pdf.LinearGradient(0, cardHeight-2.8, cardWidth, 2.8, 250, 204, 21, 22, 163, 74, 0, 0, 1, 0)
}
