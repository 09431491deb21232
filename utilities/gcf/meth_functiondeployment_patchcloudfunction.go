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

	"go.uber.org/zap"
)

// patchCloudFunction submits the retrieved definition with its updated source
func (functionDeployment *FunctionDeployment) patchCloudFunction() (err error) {
	operation, err := functionDeployment.Services.Functions.Patch(functionDeployment.Core.Ctx,
		functionDeployment.Core.Settings.FunctionPath(),
		functionDeployment.Artifacts.CloudFunction)
	if err != nil {
		return fmt.Errorf("ProjectsLocationsFunctionsService.Patch %w", err)
	}
	if operation == nil {
		return fmt.Errorf("ProjectsLocationsFunctionsService.Patch returned no operation")
	}
	functionDeployment.Artifacts.Operation = operation
	functionDeployment.Core.Logger.Info("Successfully patched Cloud Function", zap.String("operation_name", operation.Name))
	functionDeployment.Core.Logger.Debug("gcf patch response", zap.Any("response", operation))
	return nil
}
