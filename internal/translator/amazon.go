package translator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awstranslate "github.com/aws/aws-sdk-go-v2/service/translate"

	"github.com/valpere/civiclink/internal"
	"github.com/valpere/civiclink/internal/config"
	"github.com/valpere/civiclink/internal/languages"
)

type amazonTranslateAPI interface {
	TranslateText(ctx context.Context, params *awstranslate.TranslateTextInput, optFns ...func(*awstranslate.Options)) (*awstranslate.TranslateTextOutput, error)
	ListLanguages(ctx context.Context, params *awstranslate.ListLanguagesInput, optFns ...func(*awstranslate.Options)) (*awstranslate.ListLanguagesOutput, error)
}

// AmazonService translates through Amazon Translate using the default AWS
// credential chain.
type AmazonService struct {
	client amazonTranslateAPI
}

func NewAmazonService(ctx context.Context, cfg config.Amazon) (*AmazonService, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("%w: amazon: %v", internal.ErrProviderUnavailable, err)
	}
	return &AmazonService{client: awstranslate.NewFromConfig(awsCfg)}, nil
}

func (s *AmazonService) Name() string {
	return "amazon"
}

func (s *AmazonService) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	source := amazonCode(req.SourceLang)
	if source == "" {
		source = "auto"
	}

	out, err := s.client.TranslateText(ctx, &awstranslate.TranslateTextInput{
		Text:               aws.String(req.Text),
		SourceLanguageCode: aws.String(source),
		TargetLanguageCode: aws.String(amazonCode(req.TargetLang)),
	})
	if err != nil {
		result.Error = fmt.Sprintf("translation failed: %v", err)
		return result, fmt.Errorf("translation failed: %w", err)
	}

	result.TranslatedText = aws.ToString(out.TranslatedText)
	result.Metadata = map[string]string{"source_lang": aws.ToString(out.SourceLanguageCode)}
	return result, nil
}

func (s *AmazonService) IsAvailable(ctx context.Context) error {
	if s.client == nil {
		return fmt.Errorf("amazon client not initialised")
	}
	return nil
}

func (s *AmazonService) SupportedLanguages(ctx context.Context) ([]string, error) {
	var (
		codes []string
		token *string
	)
	for {
		out, err := s.client.ListLanguages(ctx, &awstranslate.ListLanguagesInput{NextToken: token})
		if err != nil {
			return nil, err
		}
		for _, l := range out.Languages {
			codes = append(codes, aws.ToString(l.LanguageCode))
		}
		if out.NextToken == nil {
			return codes, nil
		}
		token = out.NextToken
	}
}

// amazonCode converts a language name or code to the code Amazon expects.
// Amazon uses plain "zh" for simplified Chinese.
func amazonCode(lang string) string {
	code := languages.ToCode(strings.TrimSpace(lang))
	if strings.EqualFold(code, "zh-CN") {
		return "zh"
	}
	return code
}
