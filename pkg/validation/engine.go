package validation

// Params is the parameter tree extracted from a request.
// A value is a scalar, a slice, a file payload or a nested map[string]any / Params.
// A key missing from the map is the NULL marker: its validator receives nil.
type Params map[string]any

// Validate walks spec in lock-step with params and collects every failure.
// It never fails: a nil spec or nil params simply produce fewer errors.
// A nil translator behaves like Identity.
func Validate(spec *Spec, params Params, tr Translator) *Result {
	if tr == nil {
		tr = Identity
	}
	res := newResult()
	validateTree(res, nil, spec, params, tr)
	return res
}

func validateTree(res *Result, prefix FieldPath, spec *Spec, params Params, tr Translator) {
	if spec == nil {
		return
	}
	for _, n := range spec.nodes {
		path := prefix.Child(n.name)
		value := params[n.name]

		if n.isBranch() {
			validateTree(res, path, n.children, subtree(value), tr)
			continue
		}

		for _, f := range n.validator.Validate(value) {
			res.add(path, f.Rule, f.Translate(tr))
		}
	}
}

// subtree returns value as a nested tree; anything that is not a map degrades to empty.
func subtree(value any) Params {
	switch v := value.(type) {
	case Params:
		return v
	case map[string]any:
		return Params(v)
	case map[string]string:
		out := make(Params, len(v))
		for k, s := range v {
			out[k] = s
		}
		return out
	default:
		return Params{}
	}
}
