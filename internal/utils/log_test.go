package utils

import (
	"bytes"
	"log"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Log", func() {
	var (
		logger Logger
		b      *bytes.Buffer
	)

	BeforeEach(func() {
		b = &bytes.Buffer{}
		log.SetOutput(b)
		logger = &defaultLogger{}
	})

	AfterEach(func() {
		log.SetOutput(os.Stdout)
	})

	It("the log level has the correct numeric value", func() {
		Expect(LogLevelNothing).To(BeEquivalentTo(0))
		Expect(LogLevelError).To(BeEquivalentTo(1))
		Expect(LogLevelInfo).To(BeEquivalentTo(2))
		Expect(LogLevelDebug).To(BeEquivalentTo(3))
	})

	It("log level nothing", func() {
		logger.SetLogLevel(LogLevelNothing)
		logger.Debugf("debug")
		logger.Infof("info")
		logger.Errorf("err")
		Expect(b.Bytes()).To(BeEmpty())
	})

	It("log level err", func() {
		logger.SetLogLevel(LogLevelError)
		logger.Debugf("debug")
		logger.Infof("info")
		logger.Errorf("err")
		Expect(b.String()).To(ContainSubstring("err\n"))
		Expect(b.String()).ToNot(ContainSubstring("info"))
		Expect(b.String()).ToNot(ContainSubstring("debug"))
	})

	It("log level info", func() {
		logger.SetLogLevel(LogLevelInfo)
		logger.Debugf("debug")
		logger.Infof("info")
		logger.Errorf("err")
		Expect(b.String()).To(ContainSubstring("err\n"))
		Expect(b.String()).To(ContainSubstring("info\n"))
		Expect(b.String()).ToNot(ContainSubstring("debug"))
	})

	It("log level debug", func() {
		logger.SetLogLevel(LogLevelDebug)
		logger.Debugf("debug")
		logger.Infof("info")
		logger.Errorf("err")
		Expect(b.String()).To(ContainSubstring("err\n"))
		Expect(b.String()).To(ContainSubstring("info\n"))
		Expect(b.String()).To(ContainSubstring("debug\n"))
		Expect(logger.Debug()).To(BeTrue())
	})

	It("adds prefixes", func() {
		logger.SetLogLevel(LogLevelDebug)
		prefixed := logger.WithPrefix("prefix")
		prefixed.Debugf("debug")
		Expect(b.String()).To(ContainSubstring("prefix"))
		doublePrefixed := prefixed.WithPrefix("prefix2")
		doublePrefixed.Infof("info")
		Expect(b.String()).To(ContainSubstring("prefix prefix2"))
	})

	It("logs a once-keyed error only once", func() {
		logger.SetLogLevel(LogLevelError)
		ErrorfOnce(logger, "log_test_key", "first %d", 1)
		ErrorfOnce(logger, "log_test_key", "second %d", 2)
		Expect(b.String()).To(ContainSubstring("first 1"))
		Expect(b.String()).ToNot(ContainSubstring("second 2"))
	})
})
