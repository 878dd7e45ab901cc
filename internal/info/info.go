// SPDX-License-Identifier: GPL-3.0-or-later

package info

// VERSION is the current version of minerscan
const VERSION = "v0.1.0"
