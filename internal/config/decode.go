package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// DecodeHook is the hook chain used to decode a Config from viper settings.
// Comma separated strings, as given by flags and environment variables,
// become string or int slices.
func DecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		StringToIntSliceHookFunc(","),
		mapstructure.StringToSliceHookFunc(","),
		mapstructure.TextUnmarshallerHookFunc(),
	)
}

// StringToIntSliceHookFunc splits a string on sep into an []int. Empty parts
// are dropped.
func StringToIntSliceHookFunc(sep string) mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf([]int{}) {
			return data, nil
		}
		raw := data.(string)
		out := []int{}
		for _, part := range strings.Split(raw, sep) {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			n, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("cannot parse %q as an integer list: %w", raw, err)
			}
			out = append(out, n)
		}
		return out, nil
	}
}
