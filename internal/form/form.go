// Package form collects calculator inputs with a one-shot interactive form.
package form

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/rpgo/pension-calculator/internal/domain"
)

// ErrAborted is returned when the user leaves the form before submitting.
var ErrAborted = errors.New("input aborted")

// Build creates the form for base's values. The returned map receives the
// edited text keyed by field key once the form completes.
func Build(base domain.Parameters) (*huh.Form, map[string]*string) {
	values := make(map[string]*string)
	var career, growth []huh.Field
	for _, f := range Fields() {
		v := f.Get(base)
		values[f.Key] = &v
		input := huh.NewInput().
			Key(f.Key).
			Title(f.Label).
			Description(f.Hint()).
			Value(values[f.Key]).
			Validate(f.Validate)
		switch f.Key {
		case "contrib_rate", "inc_pct", "inc_every", "inc_start_age":
			growth = append(growth, input)
		default:
			career = append(career, input)
		}
	}
	form := huh.NewForm(
		huh.NewGroup(career...).Title("Career"),
		huh.NewGroup(growth...).Title("Contributions and wage growth"),
	).WithTheme(huh.ThemeCharm())
	return form, values
}

// Collect runs the form on the terminal and returns the clamped parameters.
func Collect(ctx context.Context, base domain.Parameters) (domain.Parameters, error) {
	form, values := Build(base)
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return base, ErrAborted
		}
		return base, fmt.Errorf("run form: %w", err)
	}
	return Apply(base, deref(values))
}

func deref(values map[string]*string) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		out[k] = *v
	}
	return out
}
