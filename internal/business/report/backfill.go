package report

import (
	"github.com/trashtocash/admin-api/pkg/model"
	"github.com/trashtocash/admin-api/pkg/util"
)

// legacyFields maps camelCase identifier fields to the snake_case field older
// app versions wrote instead.
var legacyFields = [...]struct{ current, legacy string }{
	{"employeeId", "employee_id"},
	{"userId", "user_id"},
}

// BackfillFields returns the fields to merge into raw so it carries an explicit
// status and camelCase identifiers. Nil means the document needs no change.
// Legacy fields are left in place; the normalizer still prefers them.
func BackfillFields(raw model.RawDocument) map[string]any {
	fields := make(map[string]any)
	if v, ok := raw.Data["status"]; !ok || v == nil {
		fields["status"] = int64(model.StatusDone)
	}
	for _, f := range legacyFields {
		if util.Present(raw.Data[f.current]) {
			continue
		}
		if v := raw.Data[f.legacy]; util.Present(v) {
			fields[f.current] = v
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
