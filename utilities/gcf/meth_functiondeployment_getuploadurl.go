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
)

// getUploadURL sets the function sourceUploadUrl to a new signed URL
func (functionDeployment *FunctionDeployment) getUploadURL() (err error) {
	uploadURL, err := functionDeployment.Services.Functions.GenerateUploadURL(functionDeployment.Core.Ctx,
		functionDeployment.Core.Settings.Parent())
	if err != nil {
		return fmt.Errorf("ProjectsLocationsFunctionsService.GenerateUploadUrl %w", err)
	}
	functionDeployment.Artifacts.CloudFunction.SourceUploadUrl = uploadURL
	functionDeployment.Core.Logger.Info("gcf signed URL for upload retreived")
	return nil
}
