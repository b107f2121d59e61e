package cheb_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestCheb(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Cheb Suite")
}
