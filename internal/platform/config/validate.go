package config

// Validate applies the schema to a raw source in a single pass and returns
// the fully coerced value set, or every failure at once as ValidationErrors.
//
// An empty string is treated the same as an unset variable.
func Validate(schema Schema, src Source) (Values, error) {
	vals := make(Values, len(schema))
	var errs ValidationErrors

	for _, v := range schema {
		raw, ok := src.LookupEnv(v.Name)
		if !ok || raw == "" {
			switch {
			case v.HasDefault:
				typed, _ := v.coerce(v.Default) // defaults are coercion-checked in NewSchema
				vals[v.Name] = typed
			case v.Required:
				errs = append(errs, ValidationError{
					Name:   v.Name,
					Reason: ReasonMissing,
					Detail: "required variable is not set",
				})
			default:
				vals[v.Name] = v.zero()
			}
			continue
		}

		typed, verr := v.coerce(raw)
		if verr != nil {
			errs = append(errs, *verr)
			continue
		}
		vals[v.Name] = typed
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return vals, nil
}
