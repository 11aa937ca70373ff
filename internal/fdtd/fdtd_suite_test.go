package fdtd_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestFdtd(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Fdtd Suite")
}
