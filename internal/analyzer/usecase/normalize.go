package usecase

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/spf13/cast"

	"smart-task-analyzer/internal/analyzer"
	"smart-task-analyzer/internal/model"
	"smart-task-analyzer/pkg/datemath"
)

const (
	generatedIDPrefix = "__generated__"
	duplicateIDInfix  = "__dup__"
)

// recordResult is the outcome of normalizing one record: a task or an error.
type recordResult struct {
	task model.Task
	err  error
}

// normalizeBatch turns raw records into tasks with unique ids. Rejected
// records are left out and their messages returned in input order.
func normalizeBatch(records []analyzer.Record) ([]model.Task, model.TaskGraph, []string) {
	results := make([]recordResult, len(records))
	for i, raw := range records {
		task, err := normalizeRecord(raw, i)
		results[i] = recordResult{task: task, err: err}
	}

	tasks := make([]model.Task, 0, len(records))
	graph := make(model.TaskGraph, len(records))
	errs := make([]string, 0)

	for i, res := range results {
		if res.err != nil {
			errs = append(errs, res.err.Error())
			continue
		}
		t := res.task
		if t.ID == "" {
			t.ID = fmt.Sprintf("%s%d", generatedIDPrefix, i)
		}
		for {
			if _, taken := graph[t.ID]; !taken {
				break
			}
			t.ID = fmt.Sprintf("%s%s%d", t.ID, duplicateIDInfix, i)
		}
		tasks = append(tasks, t)
		graph[t.ID] = t
	}

	return tasks, graph, errs
}

// normalizeRecord validates one record. The id is left empty when the record
// has none; normalizeBatch assigns it.
func normalizeRecord(raw analyzer.Record, index int) (model.Task, error) {
	t := model.Task{
		Title:        strings.TrimSpace(toString(raw["title"])),
		Dependencies: []string{},
	}

	if v, ok := raw["id"]; ok && v != nil {
		t.ID = toString(v)
	}

	if v := raw["due_date"]; truthy(v) {
		s, ok := v.(string)
		if !ok {
			return model.Task{}, fieldError(index, t.Title, "due_date", fmt.Errorf("expected an ISO-8601 string, got %T", v))
		}
		due, err := datemath.ParseISODate(s)
		if err != nil {
			return model.Task{}, fieldError(index, t.Title, "due_date", err)
		}
		t.DueDate = &due
	}

	hours, err := optionalFloat(raw, "estimated_hours")
	if err != nil {
		return model.Task{}, fieldError(index, t.Title, "estimated_hours", err)
	}
	t.EstimatedHours = hours

	importance, err := optionalFloat(raw, "importance")
	if err != nil {
		return model.Task{}, fieldError(index, t.Title, "importance", err)
	}
	t.Importance = importance

	if v := raw["dependencies"]; truthy(v) {
		deps, ok := toStringSlice(v)
		if !ok {
			return model.Task{}, fieldError(index, t.Title, "dependencies", fmt.Errorf("got %T", v))
		}
		t.Dependencies = deps
	}

	return t, nil
}

func fieldError(index int, title, field string, err error) *analyzer.NormalizationError {
	return &analyzer.NormalizationError{Index: index, Title: title, Field: field, Err: err}
}

// optionalFloat reads key as a finite float. Absent and null both mean unset.
func optionalFloat(raw analyzer.Record, key string) (*float64, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, nil
	}
	if str, isString := v.(string); isString {
		v = strings.TrimSpace(str)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%v is not a finite number", v)
	}
	return &f, nil
}

func toString(v any) string {
	if v == nil {
		return ""
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}

func toStringSlice(v any) ([]string, bool) {
	switch list := v.(type) {
	case []string:
		return append([]string{}, list...), true
	case []any:
		out := make([]string, len(list))
		for i, item := range list {
			out[i] = toString(item)
		}
		return out, true
	}
	return nil, false
}

// truthy mirrors the loose "is this field filled in" check used for optional
// JSON fields: null, false, zero, "" and empty collections are all unset.
func truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	}
	return true
}
