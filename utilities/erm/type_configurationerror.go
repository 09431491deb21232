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

package erm

import (
	"fmt"

	"github.com/containerd/errdefs"
)

// ConfigurationError a setting is missing or cannot be parsed
type ConfigurationError struct {
	Field   string
	Missing bool
	Value   string
}

// NewMissingConfigurationError names the missing setting
func NewMissingConfigurationError(field string) *ConfigurationError {
	return &ConfigurationError{Field: field, Missing: true}
}

// NewInvalidConfigurationError names the setting and the value that could not be parsed
func NewInvalidConfigurationError(field, value string) *ConfigurationError {
	return &ConfigurationError{Field: field, Value: value}
}

func (e *ConfigurationError) Error() string {
	if e.Missing {
		return fmt.Sprintf("Missing `%s` config", e.Field)
	}
	return fmt.Sprintf("Invalid `%s` config: %q", e.Field, e.Value)
}

// Unwrap classifies configuration errors as invalid arguments
func (e *ConfigurationError) Unwrap() error {
	return errdefs.ErrInvalidArgument
}
