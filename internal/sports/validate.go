package sports

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gprawdzik/x10dev-zaliczenie/internal/fitness"
	"github.com/gprawdzik/x10dev-zaliczenie/pkg"
)

const (
	maxCodeLength        = 32
	maxNameLength        = 64
	maxDescriptionLength = 255
)

var codePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

type CreateInput struct {
	Code        string
	Name        string
	Description *string
	Profile     *fitness.SportProfile
}

type createRequest struct {
	Code        string                `json:"code"`
	Name        string                `json:"name"`
	Description *string               `json:"description"`
	Profile     *fitness.SportProfile `json:"profile"`
}

func parseCreateRequest(req createRequest) (CreateInput, *pkg.ValidationError) {
	verr := &pkg.ValidationError{}
	in := CreateInput{
		Code: strings.TrimSpace(req.Code),
		Name: strings.TrimSpace(req.Name),
	}

	switch {
	case in.Code == "":
		verr.Add("code", "code is required")
	case len(in.Code) > maxCodeLength:
		verr.Add("code", "code must be at most 32 characters")
	case !codePattern.MatchString(in.Code):
		verr.Add("code", "code must start with a lowercase letter and contain only lowercase letters, digits and underscores")
	}

	switch {
	case in.Name == "":
		verr.Add("name", "name is required")
	case utf8.RuneCountInString(in.Name) > maxNameLength:
		verr.Add("name", "name must be at most 64 characters")
	}

	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if utf8.RuneCountInString(description) > maxDescriptionLength {
			verr.Add("description", "description must be at most 255 characters")
		} else if description != "" {
			in.Description = &description
		}
	}

	if req.Profile != nil {
		if err := req.Profile.Validate(); err != nil {
			verr.Add("profile", err.Error())
		} else {
			in.Profile = req.Profile
		}
	}

	return in, verr
}
