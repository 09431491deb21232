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

package solution

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// ReadSettings reads settings from the environment, or from a file when a path is provided.
// Environment variables take precedence over file values
func ReadSettings(path string) (settings *Settings, err error) {
	settings = &Settings{}
	if path == "" {
		err = cleanenv.ReadEnv(settings)
		if err != nil {
			return nil, fmt.Errorf("cleanenv.ReadEnv %w", err)
		}
		return settings, nil
	}
	err = cleanenv.ReadConfig(path, settings)
	if err != nil {
		return nil, fmt.Errorf("cleanenv.ReadConfig %s %w", path, err)
	}
	return settings, nil
}
