package apiclient

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strconv"

	"github.com/shenikar/barangay_portal/internal/models"
)

type formField struct {
	name  string
	value string
}

// Form - построитель multipart/form-data тела
type Form struct {
	fields []formField
	files  []*models.Upload
}

func NewForm() *Form {
	return &Form{}
}

func (f *Form) Set(name, value string) *Form {
	f.fields = append(f.fields, formField{name: name, value: value})
	return f
}

// SetOptional добавляет поле только если значение не пустое
func (f *Form) SetOptional(name, value string) *Form {
	if value == "" {
		return f
	}
	return f.Set(name, value)
}

func (f *Form) SetBool(name string, value bool) *Form {
	return f.Set(name, strconv.FormatBool(value))
}

// SetFloat записывает число без экспоненты и лишних нулей
func (f *Form) SetFloat(name string, value float64) *Form {
	return f.Set(name, strconv.FormatFloat(value, 'f', -1, 64))
}

// File прикладывает файл; nil пропускается
func (f *Form) File(u *models.Upload) *Form {
	if u == nil || u.Content == nil {
		return f
	}
	f.files = append(f.files, u)
	return f
}

// Value возвращает первое значение поля
func (f *Form) Value(name string) (string, bool) {
	for _, field := range f.fields {
		if field.name == name {
			return field.value, true
		}
	}
	return "", false
}

// Encode сериализует форму и возвращает тело с Content-Type
func (f *Form) Encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, field := range f.fields {
		if err := w.WriteField(field.name, field.value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", field.name, err)
		}
	}

	for _, file := range f.files {
		part, err := createFilePart(w, file)
		if err != nil {
			return nil, "", fmt.Errorf("create part %s: %w", file.Field, err)
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return nil, "", fmt.Errorf("copy file %s: %w", file.Filename, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

func createFilePart(w *multipart.Writer, file *models.Upload) (io.Writer, error) {
	if file.ContentType == "" {
		return w.CreateFormFile(file.Field, file.Filename)
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, file.Field, file.Filename))
	h.Set("Content-Type", file.ContentType)
	return w.CreatePart(h)
}
