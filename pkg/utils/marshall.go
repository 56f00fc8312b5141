// Package utils contains JSON helpers shared by the scene model.
package utils

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// TypeBasedUnmarshallJSON decodes data into the value created by the
// typeMapping entry selected by the "type" field of data.
func TypeBasedUnmarshallJSON(
	data []byte, typeMapping map[string]func() interface{},
) (interface{}, error) {
	var rawType struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &rawType); err != nil {
		return nil, err
	}

	create, knownType := typeMapping[rawType.Type]
	if !knownType {
		return nil, fmt.Errorf("unknown type %q", rawType.Type)
	}
	value := create()
	if err := json.Unmarshal(data, value); err != nil {
		return nil, err
	}
	reflectValue := reflect.ValueOf(value)
	if reflectValue.Kind() != reflect.Ptr {
		return nil, fmt.Errorf("invalid input type %T", value)
	}
	return reflectValue.Elem().Interface(), nil
}

// IsJSONNull reports whether data is the JSON null literal.
func IsJSONNull(data []byte) bool {
	return string(data) == "null"
}
