package config_test

import (
	"io/ioutil"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/guychait/minigrep/config"
)

var _ = Describe("Load", func() {
	var tempDir string

	BeforeEach(func() {
		var err error
		tempDir, err = ioutil.TempDir("", "config-test")
		Expect(err).NotTo(HaveOccurred())

		Expect(os.Unsetenv(config.EnvVar)).To(Succeed())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(tempDir)).To(Succeed())
	})

	writeConfig := func(content string) string {
		path := filepath.Join(tempDir, "config.yaml")
		Expect(ioutil.WriteFile(path, []byte(content), 0644)).To(Succeed())
		return path
	}

	It("returns zero values when no file is configured", func() {
		cfg, err := config.Load("")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg).To(Equal(&config.Config{}))
	})

	It("loads defaults from an explicit path", func() {
		path := writeConfig("ignore_case: true\nline_number: true\n")

		cfg, err := config.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.IgnoreCase).To(BeTrue())
		Expect(cfg.LineNumber).To(BeTrue())
		Expect(cfg.WholeLine).To(BeFalse())
	})

	It("loads defaults from the environment variable", func() {
		path := writeConfig("color: true\n")
		Expect(os.Setenv(config.EnvVar, path)).To(Succeed())
		defer os.Unsetenv(config.EnvVar)

		cfg, err := config.Load("")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Color).To(BeTrue())
	})

	It("fails when an explicitly given file is missing", func() {
		_, err := config.Load(filepath.Join(tempDir, "nope.yaml"))
		Expect(err).To(HaveOccurred())
	})

	It("ignores a missing file named only by the environment", func() {
		Expect(os.Setenv(config.EnvVar, filepath.Join(tempDir, "nope.yaml"))).To(Succeed())
		defer os.Unsetenv(config.EnvVar)

		cfg, err := config.Load("")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg).To(Equal(&config.Config{}))
	})

	It("fails on malformed YAML", func() {
		path := writeConfig("{not yaml")

		_, err := config.Load(path)
		Expect(err).To(HaveOccurred())
	})
})
