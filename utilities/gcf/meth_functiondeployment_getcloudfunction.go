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

package gcf

import (
	"fmt"

	"github.com/BrunoReboul/gcfdeploy/utilities/erm"
	"go.uber.org/zap"
)

// getCloudFunction retrieves the existing cloud function definition
func (functionDeployment *FunctionDeployment) getCloudFunction() (err error) {
	name := functionDeployment.Core.Settings.FunctionPath()
	retreivedCloudFunction, err := functionDeployment.Services.Functions.Get(functionDeployment.Core.Ctx, name)
	if err != nil {
		if erm.IsNotFound(err) {
			return fmt.Errorf("%w %s", erm.ErrFunctionNotFound, name)
		}
		return fmt.Errorf("ProjectsLocationsFunctionsService.Get %w", err)
	}
	if retreivedCloudFunction == nil {
		return fmt.Errorf("%w %s", erm.ErrFunctionNotFound, name)
	}
	functionDeployment.Core.Logger.Debug("gcf function definition", zap.Any("function", retreivedCloudFunction))
	functionDeployment.Artifacts.CloudFunction = retreivedCloudFunction
	functionDeployment.Artifacts.Source = sourceOf(retreivedCloudFunction)
	return nil
}
