package validator

import (
	"net/mail"
	"strings"
	"time"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

func ValidateRegister(name, email, password string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(name) == "" {
		errs.Add("name", "Name is required")
	}

	validateEmail(email, errs)

	if len(password) < 6 {
		errs.Add("password", "Password must be at least 6 characters")
	}

	return errs
}

func ValidateLogin(email, password string) ValidationErrors {
	errs := make(ValidationErrors)

	validateEmail(email, errs)

	if password == "" {
		errs.Add("password", "Password is required")
	}

	return errs
}

func ValidateProfile(status, skills string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(status) == "" {
		errs.Add("status", "Status is required")
	}
	if strings.TrimSpace(skills) == "" {
		errs.Add("skills", "Skills is required")
	}

	return errs
}

func ValidateExperience(title, company string, from time.Time) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(title) == "" {
		errs.Add("title", "Title is required")
	}
	if strings.TrimSpace(company) == "" {
		errs.Add("company", "Company is required")
	}
	if from.IsZero() {
		errs.Add("from", "From date is required")
	}

	return errs
}

func ValidateEducation(school, degree, fieldOfStudy string, from time.Time) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(school) == "" {
		errs.Add("school", "School is required")
	}
	if strings.TrimSpace(degree) == "" {
		errs.Add("degree", "Degree is required")
	}
	if strings.TrimSpace(fieldOfStudy) == "" {
		errs.Add("field_of_study", "Field of study is required")
	}
	if from.IsZero() {
		errs.Add("from", "From date is required")
	}

	return errs
}

func ValidateText(text string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(text) == "" {
		errs.Add("text", "Text is required")
	} else if len(text) > 5000 {
		errs.Add("text", "Text is too long")
	}

	return errs
}

func validateEmail(email string, errs ValidationErrors) {
	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Invalid email address")
	}
}
