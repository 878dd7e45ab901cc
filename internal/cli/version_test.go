// SPDX-License-Identifier: GPL-3.0-or-later

package cli_test

import (
	"bytes"
	"net"
	"testing"

	"github.com/minerdetect/minerscan/internal/cli"
	"github.com/minerdetect/minerscan/internal/info"
	"github.com/minerdetect/minerscan/internal/logger"
	mock_core "github.com/minerdetect/minerscan/internal/mock/core"
	mock_network "github.com/minerdetect/minerscan/mock/network"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestVersionCommand(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	b := []byte{}
	buf := bytes.NewBuffer(b)

	logger.SetBufferOutput(buf)

	t.Run("prints versions to console", func(st *testing.T) {
		mockNetwork := mock_network.NewMockNetwork(ctrl)
		mockRunner := mock_core.NewMockRunner(ctrl)

		mockNetwork.EXPECT().Interface().AnyTimes().Return(&net.Interface{
			Name: "test-interface",
		})

		cmd, err := cli.Root(mockRunner, mockNetwork)

		assert.NoError(st, err)

		cmd.SetArgs([]string{"version"})
		err = cmd.Execute()

		assert.NoError(st, err)

		output := buf.String()

		assert.Contains(st, output, info.VERSION)
	})
}
