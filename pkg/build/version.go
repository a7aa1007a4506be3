// SPDX-FileCopyrightText: 2025 ccmclean authors
// SPDX-License-Identifier: Apache-2.0

package build

// Version gets overridden at build time using
// -X github.com/winadmins/ccmclean/pkg/build.Version=$VERSION
var Version = "dev"
