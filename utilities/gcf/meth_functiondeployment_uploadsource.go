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
	"os"
)

// uploadSource chooses how the zip reaches the cloud function source
func (functionDeployment *FunctionDeployment) uploadSource(zipFile *os.File) (err error) {
	_, err = zipFile.Seek(0, io.SeekStart)
	if err != nil {
		return fmt.Errorf("zipFile.Seek %v", err)
	}
	switch functionDeployment.Artifacts.Source {
	case sourceArchiveURL:
		return functionDeployment.uploadZipUsingArchiveURL(zipFile)
	default:
		err = functionDeployment.getUploadURL()
		if err != nil {
			return err
		}
		return functionDeployment.uploadZipUsingSignedURL(zipFile)
	}
}
