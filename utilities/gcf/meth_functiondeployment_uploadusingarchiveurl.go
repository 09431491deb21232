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
	"io"

	"github.com/BrunoReboul/gcfdeploy/utilities/erm"
	"github.com/BrunoReboul/gcfdeploy/utilities/gcs"
	"go.uber.org/zap"
)

// uploadZipUsingArchiveURL overwrites the cloud storage object the function already points to
func (functionDeployment *FunctionDeployment) uploadZipUsingArchiveURL(content io.Reader) (err error) {
	bucketName, objectName, err := gcs.ParseArchiveURL(functionDeployment.Artifacts.CloudFunction.SourceArchiveUrl)
	if err != nil {
		return err
	}
	err = functionDeployment.Services.Archives.Upload(functionDeployment.Core.Ctx, bucketName, objectName, content)
	if err != nil {
		return fmt.Errorf("%w %v", erm.ErrUploadTransport, err)
	}
	functionDeployment.Core.Logger.Info("gcf source code object uploaded",
		zap.String("bucket", bucketName),
		zap.String("object", objectName))
	return nil
}
