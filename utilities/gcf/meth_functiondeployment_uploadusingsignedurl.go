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
	"net/http"
	"os"

	"github.com/BrunoReboul/gcfdeploy/utilities/erm"
	"go.uber.org/zap"
)

// maxLoggedBodyBytes caps the response body kept for debug logs
const maxLoggedBodyBytes = 64 * 1024

// uploadZipUsingSignedURL PUT the file content to the signed URL.
// A non 2xx status code is logged, not returned as an error
func (functionDeployment *FunctionDeployment) uploadZipUsingSignedURL(zipFile *os.File) (err error) {
	log := functionDeployment.Core.Logger
	fileInfo, err := zipFile.Stat()
	if err != nil {
		return fmt.Errorf("zipFile.Stat %v", err)
	}
	request, err := http.NewRequestWithContext(functionDeployment.Core.Ctx, http.MethodPut,
		functionDeployment.Artifacts.CloudFunction.SourceUploadUrl, zipFile)
	if err != nil {
		return fmt.Errorf("%w http.NewRequest %v", erm.ErrUploadTransport, err)
	}
	request.ContentLength = fileInfo.Size()
	// https://cloud.google.com/functions/docs/reference/rest/v1/projects.locations.functions/generateUploadUrl
	request.Header.Add("content-type", "application/zip")
	request.Header.Add("x-goog-content-length-range", "0,104857600")
	response, err := functionDeployment.Services.HTTPClient.Do(request)
	if err != nil {
		return fmt.Errorf("%w %v", erm.ErrUploadTransport, err)
	}
	defer response.Body.Close()

	functionDeployment.Artifacts.UploadStatusCode = response.StatusCode
	log.Info("gcf upload response status code", zap.Int("status_code", response.StatusCode))
	if response.StatusCode < 200 || response.StatusCode > 299 {
		log.Warn("gcf upload not accepted, deployment goes on with the patch", zap.Int("status_code", response.StatusCode))
	}
	body, err := io.ReadAll(io.LimitReader(response.Body, maxLoggedBodyBytes))
	if err != nil {
		log.Debug("gcf cannot read upload response body", zap.Error(err))
		return nil
	}
	log.Debug("gcf upload response body", zap.ByteString("body", body))
	return nil
}
