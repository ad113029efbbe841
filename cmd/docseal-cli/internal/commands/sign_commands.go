package commands

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/docseal/docseal/internal/domain/signing"
	"github.com/docseal/docseal/internal/infrastructure/cryptography"
	"github.com/docseal/docseal/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// SignCommandHandler encapsulates logic for document signing operations via CLI.
type SignCommandHandler struct {
	signatureService signing.SignatureService
	logger           logger.Logger
}

// NewSignCommandHandler initializes a new SignCommandHandler with logging and
// an RSA signature service.
func NewSignCommandHandler() (*SignCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	signatureService, err := cryptography.NewRSASignatureService(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create signature service: %w", err)
	}

	return &SignCommandHandler{
		signatureService: signatureService,
		logger:           loggerInstance,
	}, nil
}

// GenerateKeysCmd generates an RSA key pair and persists it in a selected directory
func (commandHandler *SignCommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		commandHandler.logger.Error("invalid key-size flag: %v", err)
		return
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		commandHandler.logger.Error("invalid key-dir flag: %v", err)
		return
	}

	uniqueID := uuid.New()

	privateKey, publicKey, err := commandHandler.signatureService.GenerateKeyPair(keySize)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	privatePem, err := commandHandler.signatureService.ExportPrivateKey(privateKey)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	publicPem, err := commandHandler.signatureService.ExportPublicKey(publicKey)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	privateKeyFilePath := fmt.Sprintf("%s/%s-private-key.pem", keyDir, uniqueID.String())
	if err = os.WriteFile(privateKeyFilePath, privatePem, 0600); err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	publicKeyFilePath := fmt.Sprintf("%s/%s-public-key.pem", keyDir, uniqueID.String())
	if err = os.WriteFile(publicKeyFilePath, publicPem, 0600); err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	commandHandler.logger.Info("Generated key pair in ", keyDir)
}

// SignFileCmd signs a file and writes the Base64 encoded signature next to it
func (commandHandler *SignCommandHandler) SignFileCmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: %v", err)
		return
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		commandHandler.logger.Error("invalid private-key flag: %v", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: %v", err)
		return
	}
	if outputFile == "" {
		outputFile = inputFile + ".sig"
	}

	pemBytes, err := os.ReadFile(filepath.Clean(privateKeyPath))
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	privateKey, err := commandHandler.signatureService.ImportPrivateKey(pemBytes)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	document, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	signature, err := commandHandler.signatureService.Sign(document, privateKey)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	signatureB64 := base64.StdEncoding.EncodeToString(signature)
	if err = os.WriteFile(outputFile, []byte(signatureB64), 0600); err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	commandHandler.logger.Info("Signature path ", outputFile)
}

// VerifyFileCmd verifies a Base64 encoded signature over a file
func (commandHandler *SignCommandHandler) VerifyFileCmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: %v", err)
		return
	}
	signatureFile, err := cmd.Flags().GetString("signature-file")
	if err != nil {
		commandHandler.logger.Error("invalid signature-file flag: %v", err)
		return
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		commandHandler.logger.Error("invalid public-key flag: %v", err)
		return
	}

	pemBytes, err := os.ReadFile(filepath.Clean(publicKeyPath))
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	publicKey, err := commandHandler.signatureService.ImportPublicKey(pemBytes)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	document, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	signatureB64, err := os.ReadFile(filepath.Clean(signatureFile))
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	signature, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(signatureB64)))
	if err != nil {
		commandHandler.logger.Error("invalid Base64 signature: %v", err)
		return
	}

	valid, err := commandHandler.signatureService.Verify(document, signature, publicKey)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	if valid {
		commandHandler.logger.Info("Signature valid for ", inputFile)
	} else {
		commandHandler.logger.Info("Signature INVALID for ", inputFile)
	}
}

// InitSignCommands registers document signing commands
func InitSignCommands(rootCmd *cobra.Command) error {
	handler, err := NewSignCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create sign command handler %w", err)
	}

	var generateKeysCmd = &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate an RSA key pair",
		Run:   handler.GenerateKeysCmd,
	}
	generateKeysCmd.Flags().IntP("key-size", "", 2048, "RSA key size in bits (2048, 3072 or 4096)")
	generateKeysCmd.Flags().StringP("key-dir", "", "", "Directory to store the RSA keys")
	rootCmd.AddCommand(generateKeysCmd)

	var signFileCmd = &cobra.Command{
		Use:   "sign",
		Short: "Sign a file with an RSA private key",
		Run:   handler.SignFileCmd,
	}
	signFileCmd.Flags().StringP("input-file", "", "", "Path to the file to sign")
	signFileCmd.Flags().StringP("private-key", "", "", "Path to the PEM encoded RSA private key")
	signFileCmd.Flags().StringP("output-file", "", "", "Path to the Base64 signature file (defaults to <input-file>.sig)")
	rootCmd.AddCommand(signFileCmd)

	var verifyFileCmd = &cobra.Command{
		Use:   "verify",
		Short: "Verify a file signature with an RSA public key",
		Run:   handler.VerifyFileCmd,
	}
	verifyFileCmd.Flags().StringP("input-file", "", "", "Path to the file to verify")
	verifyFileCmd.Flags().StringP("signature-file", "", "", "Path to the Base64 signature file")
	verifyFileCmd.Flags().StringP("public-key", "", "", "Path to the PEM encoded RSA public key")
	rootCmd.AddCommand(verifyFileCmd)

	return nil
}
