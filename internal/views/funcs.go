package views

import (
	"html/template"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yigit/conexao/internal/app/models"
	"github.com/yigit/conexao/internal/app/models/dto"
	"github.com/yigit/conexao/internal/pkg/helpers"
)

// FuncMap returns the template helpers bound to a locale formatter.
func FuncMap(f *helpers.Formatter) template.FuncMap {
	return template.FuncMap{
		"money": f.Money,
		"moneyPtr": func(v *float64) string {
			if v == nil {
				return ""
			}
			return f.Money(*v)
		},
		"decimal": func(v float64) string { return f.Decimal(v, 1) },
		"count":   f.Count,
		"ago":     func(t time.Time) string { return helpers.RelativeTime(t, time.Now()) },
		"agoPtr": func(t *time.Time) string {
			if t == nil {
				return ""
			}
			return helpers.RelativeTime(*t, time.Now())
		},
		"date":      helpers.FormatDate,
		"navActive": NavActive,
		"stars":     Stars,
		"ratingScale": func() []int {
			return []int{models.MinRating, 2, 3, 4, models.MaxRating}
		},
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"pageQuery": PageQuery,
		"fieldError": func(errs *dto.ValidationErrors, field string) string {
			return errs.Get(field)
		},
		"add": func(a, b int) int { return a + b },
		"initial": func(name string) string {
			for _, r := range name {
				return strings.ToUpper(string(r))
			}
			return "?"
		},

		"statusLabel":        StatusLabel,
		"urgencyLabel":       UrgencyLabel,
		"favorTypeLabel":     FavorTypeLabel,
		"participationLabel": ParticipationLabel,
		"communityTypeLabel": CommunityTypeLabel,
		"nicheLabel":         NicheLabel,
		"reasonLabel":        ReasonLabel,
		"reportStatusLabel":  ReportStatusLabel,
		"reportReasons":      func() []models.ReportReason { return models.ReportReasons },
		"niches":             func() []models.Niche { return models.Niches },
	}
}

// NavActive highlights a navigation entry by path prefix. "/" only matches itself.
func NavActive(current, prefix string) bool {
	if prefix == "/" {
		return current == "/"
	}
	return current == prefix || strings.HasPrefix(current, prefix+"/")
}

// Stars renders a 1-5 score as filled and empty stars.
func Stars(score int) string {
	score = min(max(score, 0), models.MaxRating)
	return strings.Repeat("★", score) + strings.Repeat("☆", models.MaxRating-score)
}

// PageQuery re-encodes a filter query with another page number.
func PageQuery(query url.Values, page int) string {
	q := url.Values{}
	for k, v := range query {
		if k != "page" {
			q[k] = v
		}
	}
	q.Set("page", strconv.Itoa(page))
	return "?" + q.Encode()
}
