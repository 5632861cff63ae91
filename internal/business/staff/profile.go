package staff

import (
	"strings"
	"time"

	"github.com/trashtocash/admin-api/pkg/model"
	"github.com/trashtocash/admin-api/pkg/util"
)

const (
	roleAdmin    = "admin"
	roleEmployee = "employ"
)

// RoleLabel renders a stored role for the profile card.
func RoleLabel(role string) string {
	switch role {
	case roleAdmin:
		return "Administrator"
	case roleEmployee:
		return "Employee"
	case "":
		return "User"
	}
	return role
}

// ProfileFromDocument maps a users document for uid onto the profile card.
func ProfileFromDocument(uid string, doc model.RawDocument, loc *time.Location) model.Profile {
	d := doc.Data
	p := model.Profile{
		FirstName: strings.TrimSpace(util.StringOr(d, []string{"firstName"}, "")),
		LastName:  strings.TrimSpace(util.StringOr(d, []string{"lastName"}, "")),
		Email:     util.StringOr(d, []string{"email"}, ""),
		Phone:     util.StringOr(d, []string{"phone"}, ""),
		Role:      util.StringOr(d, []string{"role"}, roleEmployee),
		CreatedAt: util.NotAvailable,
		UserID:    util.StringOr(d, []string{"userId"}, uid),
	}
	if ts, ok := util.ToTime(d["createdAt"]); ok {
		p.CreatedAt = util.DisplayDate(&ts, loc)
	}
	p.RoleLabel = RoleLabel(p.Role)
	return p
}
