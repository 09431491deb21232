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

package gcs

import (
	"fmt"
	"net/url"
	"strings"
)

// ParseArchiveURL splits scheme://bucket/object/path into bucket and object names
func ParseArchiveURL(archiveURL string) (bucketName, objectName string, err error) {
	u, err := url.Parse(archiveURL)
	if err != nil {
		return "", "", fmt.Errorf("url.Parse %s %v", archiveURL, err)
	}
	bucketName = u.Host
	objectName = strings.TrimPrefix(u.Path, "/")
	if bucketName == "" || objectName == "" {
		return "", "", fmt.Errorf("archive url must look like gs://bucket/object, got %s", archiveURL)
	}
	return bucketName, objectName, nil
}
