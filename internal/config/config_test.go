// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package config_test

import (
	"os"
	"path/filepath"

	. "github.com/ironcore-dev/tokenint/internal/config"
	"github.com/ironcore-dev/tokenint/internal/pipeline"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"
)

var _ = Describe("Load", func() {
	var fs *pflag.FlagSet
	BeforeEach(func() {
		fs = pflag.NewFlagSet("test", pflag.ContinueOnError)
		AddFlags(fs)
		for _, key := range []string{"TOKENINT_DISCIPLINE", "TOKENINT_LOG_LEVEL", "TOKENINT_CONFIG"} {
			GinkgoT().Setenv(key, "")
			Expect(os.Unsetenv(key)).To(Succeed())
		}
	})

	writeConfig := func(content string) string {
		path := filepath.Join(GinkgoT().TempDir(), "tokenint.yaml")
		Expect(os.WriteFile(path, []byte(content), 0666)).To(Succeed())
		return path
	}

	It("should use the defaults", func() {
		cfg, err := Load(fs)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg).To(Equal(&Config{Discipline: pipeline.Finally, LogLevel: "error"}))
	})

	It("should prefer environment variables over defaults", func() {
		GinkgoT().Setenv("TOKENINT_DISCIPLINE", "scoped")
		GinkgoT().Setenv("TOKENINT_LOG_LEVEL", "debug")

		cfg, err := Load(fs)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg).To(Equal(&Config{Discipline: pipeline.Scoped, LogLevel: "debug"}))
	})

	It("should prefer flags over environment variables", func() {
		GinkgoT().Setenv("TOKENINT_DISCIPLINE", "scoped")
		Expect(fs.Parse([]string{"--discipline=Finally"})).To(Succeed())

		cfg, err := Load(fs)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Discipline).To(Equal(pipeline.Finally))
	})

	It("should read the config file and let the environment override it", func() {
		path := writeConfig("discipline: scoped\nlog-level: info\n")
		GinkgoT().Setenv("TOKENINT_LOG_LEVEL", "warn")
		Expect(fs.Parse([]string{"--config", path})).To(Succeed())

		cfg, err := Load(fs)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg).To(Equal(&Config{Discipline: pipeline.Scoped, LogLevel: "warn"}))
	})

	It("should error if the config file cannot be read", func() {
		Expect(fs.Parse([]string{"--config", filepath.Join(GinkgoT().TempDir(), "missing.yaml")})).To(Succeed())

		_, err := Load(fs)
		Expect(err).To(MatchError(ContainSubstring("error reading config file")))
	})

	It("should reject unknown disciplines", func() {
		Expect(fs.Parse([]string{"--discipline", "manual"})).To(Succeed())

		_, err := Load(fs)
		Expect(err).To(MatchError(ContainSubstring(`unknown discipline "manual"`)))
	})

	It("should reject unknown log levels", func() {
		Expect(fs.Parse([]string{"--log-level", "loud"})).To(Succeed())

		_, err := Load(fs)
		Expect(err).To(MatchError(ContainSubstring(`log level "loud"`)))
	})
})
