package forms

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/barangay_portal/internal/models"
	"github.com/shenikar/barangay_portal/internal/notify"
	"github.com/sirupsen/logrus"
)

// FieldError - ошибка одного поля формы
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// ValidationErrors - ошибки проверки формы до отправки на сервер
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, fe := range v {
		msgs = append(msgs, fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Fields возвращает сообщения по именам полей
func (v ValidationErrors) Fields() map[string]string {
	out := make(map[string]string, len(v))
	for _, fe := range v {
		out[fe.Field] = fe.Message
	}
	return out
}

// Сообщения, которые форма показывает вместо стандартного "is required"
var requiredMessages = map[string]string{
	"agree_terms":      "Please agree to the terms and conditions",
	"agree_to_terms":   "Please agree to the terms and conditions",
	"certificate_type": "Please select a certificate type",
	"incident_type":    "Please select an incident type",
	"type":             "Please select a complaint type",
}

// Validator проверяет формы и сообщает об ошибке уведомлением
type Validator struct {
	validate *validator.Validate
	notifier notify.Notifier
	logger   *logrus.Logger
}

func NewValidator(notifier notify.Notifier, logger *logrus.Logger) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// В сообщениях используем имена полей из json
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("blotter_type", func(fl validator.FieldLevel) bool {
		_, ok := models.BlotterIncidentPriority[fl.Field().String()]
		return ok
	})
	_ = v.RegisterValidation("incident_type", func(fl validator.FieldLevel) bool {
		want := models.IncidentType(fl.Field().String())
		for _, t := range models.IncidentTypes {
			if t == want {
				return true
			}
		}
		return false
	})

	return &Validator{validate: v, notifier: notifier, logger: logger}
}

// Check проверяет форму. При ошибке возвращает ValidationErrors
// и показывает уведомление; на сервер ничего не отправляется.
func (v *Validator) Check(form any) error {
	err := v.Validate(form)
	if err == nil {
		return nil
	}

	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		description := ""
		if len(verrs) > 1 {
			description = fmt.Sprintf("%d more field(s) need attention.", len(verrs)-1)
		}
		notify.Failure(v.notifier, verrs[0].Message, description)
	}

	v.logger.WithFields(logrus.Fields{
		"service": "forms",
		"form":    reflect.Indirect(reflect.ValueOf(form)).Type().Name(),
	}).WithError(err).Warn("Form validation failed")
	return err
}

// Validate проверяет форму без уведомления
func (v *Validator) Validate(form any) error {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("forms: could not validate: %w", err)
	}

	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		if msg, ok := requiredMessages[field]; ok {
			return msg
		}
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "eqfield":
		if field == "confirm_password" {
			return "Passwords do not match"
		}
		return fmt.Sprintf("%s must match %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "latitude", "longitude":
		return fmt.Sprintf("%s must be a valid %s", field, fe.Tag())
	case "datetime":
		return fmt.Sprintf("%s must match format %s", field, fe.Param())
	case "blotter_type", "incident_type":
		return "Please select an incident type"
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}
