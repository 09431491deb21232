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
	"strconv"

	"github.com/BrunoReboul/gcfdeploy/utilities/erm"
)

// Situate parses the optional boolean settings. Empty means default
func (settings *Settings) Situate() (err error) {
	settings.Debug, err = parseBoolSetting("debug_mode", settings.DebugMode, true)
	if err != nil {
		return err
	}
	settings.Wait, err = parseBoolSetting("wait_for_operation", settings.WaitForOperation, false)
	if err != nil {
		return err
	}
	return nil
}

func parseBoolSetting(name, value string, defaultValue bool) (bool, error) {
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, erm.NewInvalidConfigurationError(name, value)
	}
	return b, nil
}
