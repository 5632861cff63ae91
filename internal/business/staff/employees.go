package staff

import (
	"fmt"
	"strings"
	"time"

	"github.com/trashtocash/admin-api/pkg/model"
	"github.com/trashtocash/admin-api/pkg/util"
)

const unknownName = "Unknown"

var employeeStatusByKey = map[string]model.EmployeeStatus{
	"shift":  model.EmployeeShift,
	"absent": model.EmployeeAbsent,
	"break":  model.EmployeeBreak,
}

// ParseStatusFilter maps a filter key (all, shift, absent, break) to a status.
func ParseStatusFilter(key string) (*model.EmployeeStatus, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" || key == "all" {
		return nil, nil
	}
	status, ok := employeeStatusByKey[key]
	if !ok {
		return nil, fmt.Errorf("unknown status filter %q", key)
	}
	return &status, nil
}

// EmployeeFromDocument projects a users document onto the employee table.
// The users schema has no shift state, so employees show as on shift unless a
// status was written through this API.
func EmployeeFromDocument(doc model.RawDocument, loc *time.Location) model.Employee {
	d := doc.Data
	first := util.StringOr(d, []string{"firstName"}, "")
	last := util.StringOr(d, []string{"lastName"}, "")
	name := strings.TrimSpace(first + " " + last)
	if name == "" {
		name = unknownName
	}

	e := model.Employee{
		ID:        util.StringOr(d, []string{"userId"}, doc.ID),
		DocID:     doc.ID,
		Name:      name,
		Email:     util.StringOr(d, []string{"email"}, ""),
		Phone:     util.StringOr(d, []string{"phone"}, ""),
		Warehouse: util.StringOr(d, []string{"warehouse"}, util.NotAvailable),
		Date:      util.NotAvailable,
		Status:    model.EmployeeShift,
	}
	if ts, ok := util.ToTime(d["createdAt"]); ok {
		e.Date = util.DisplayDate(&ts, loc)
	}
	if n, ok := util.ToInt(d["status"]); ok {
		switch s := model.EmployeeStatus(n); s {
		case model.EmployeeShift, model.EmployeeAbsent, model.EmployeeBreak:
			e.Status = s
		}
	}
	return e
}

// FilterEmployees keeps employees whose name contains search (ignoring case)
// and, when status is set, whose status matches.
func FilterEmployees(list []model.Employee, search string, status *model.EmployeeStatus) []model.Employee {
	out := make([]model.Employee, 0, len(list))
	for _, e := range list {
		if status != nil && e.Status != *status {
			continue
		}
		if search != "" && !util.ContainsFold(e.Name, search) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// employeeFields converts an input into users document fields. The name is
// split at the first space into firstName and lastName.
func employeeFields(in model.EmployeeInput) map[string]any {
	first, last, _ := strings.Cut(strings.TrimSpace(in.Name), " ")
	return map[string]any{
		"firstName": first,
		"lastName":  strings.TrimSpace(last),
		"email":     strings.TrimSpace(in.Email),
		"phone":     strings.TrimSpace(in.Phone),
		"warehouse": strings.TrimSpace(in.Warehouse),
		"status":    int64(in.Status),
	}
}
