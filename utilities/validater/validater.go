// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package validater

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/BrunoReboul/gcfdeploy/utilities/erm"
)

const (
	tagKeyName  = "valid"
	nameTagName = "env"
)

// validater interface
type validater interface {
	validate(interface{}) (bool, error)
}

// defaultValidater is always valid
type defaultValidater struct {
}

// validate interface returns true for a valid field, false and why in the error otherwise
func (v defaultValidater) validate(val interface{}) (bool, error) {
	return true, nil
}

// isNotZeroValueValidater do not accept zero value
type isNotZeroValueValidater struct {
}

// validate interface returns true for a valid field, false and why in the error otherwise
func (v isNotZeroValueValidater) validate(value interface{}) (bool, error) {
	typ := reflect.TypeOf(value)
	kind := typ.Kind()
	switch kind {
	case reflect.String:
		if len(value.(string)) == 0 {
			return false, fmt.Errorf("Should NOT be a zero value %s", kind)
		}
	case reflect.Int64:
		if value.(int64) == 0 {
			return false, fmt.Errorf("Should NOT be a zero value %s", kind)
		}
	case reflect.Slice:
		if reflect.ValueOf(value).Len() == 0 {
			return false, fmt.Errorf("Should NOT be a zero value %s", kind)
		}
	default:
		return false, fmt.Errorf("Unmanaged kind by 'isNotZeroValueValidater' %s", kind)
	}
	return true, nil
}

func getValidater(tagValue string) validater {
	switch strings.Split(tagValue, ",")[0] {
	case "isNotZeroValue":
		return isNotZeroValueValidater{}
	}
	return defaultValidater{}
}

// fieldName is the env tag name when there is one, else the go field name
func fieldName(typeField reflect.StructField) string {
	name := strings.Split(typeField.Tag.Get(nameTagName), ",")[0]
	if name == "" || name == "-" {
		return typeField.Name
	}
	return name
}

// FirstInvalidField walks the struct fields in declaration order and stops on the first invalid one.
// The error is an erm.ConfigurationError naming the field by its env tag
func FirstInvalidField(structure interface{}) error {
	if structure == nil {
		return nil
	}
	value := reflect.ValueOf(structure)
	if value.Kind() == reflect.Interface || value.Kind() == reflect.Ptr {
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return fmt.Errorf("type %s is not a struct", value.Kind())
	}
	for i := 0; i < value.NumField(); i++ {
		typeField := value.Type().Field(i)
		if typeField.PkgPath != "" {
			continue
		}
		valueField := value.Field(i)
		if typeField.Tag.Get(tagKeyName) != "-" && valueField.Kind() == reflect.Struct {
			if err := FirstInvalidField(valueField.Interface()); err != nil {
				return err
			}
			continue
		}
		if ok, _ := getValidater(typeField.Tag.Get(tagKeyName)).validate(valueField.Interface()); !ok {
			return erm.NewMissingConfigurationError(fieldName(typeField))
		}
	}
	return nil
}
