package prefabs

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// EvalDamageMultiplier runs a modifier script with `base` bound to the
// configured multiplier and returns the script's global `multiplier`.
func EvalDamageMultiplier(name string, base float64) (float64, error) {
	src, err := LoadScript(name)
	if err != nil {
		return 0, fmt.Errorf("prefabs: load script %s: %w", name, err)
	}
	return evalMultiplier(name, src, base)
}

func evalMultiplier(name string, src []byte, base float64) (float64, error) {
	script := tengo.NewScript(src)
	if err := script.Add("base", base); err != nil {
		return 0, err
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Run()
	if err != nil {
		return 0, fmt.Errorf("prefabs: run script %s: %w", name, err)
	}
	if !compiled.IsDefined("multiplier") {
		return 0, fmt.Errorf("prefabs: script %s does not define multiplier", name)
	}
	v := compiled.Get("multiplier")
	switch v.ValueType() {
	case "int", "float":
	default:
		return 0, fmt.Errorf("prefabs: script %s: multiplier is %s, want number", name, v.ValueType())
	}
	m := v.Float()
	if m < 0 {
		m = 0
	}
	return m, nil
}
